package env

/*
Package env provides the environment capability used by the getargv resolver.

Every resolver function takes a core.Environment instead of touching the
process environment directly:

    // Real process environment
    e := env.Process{}

    // In-memory environment for tests
    e := env.NewMap(
        env.TargetOS, "darwin",
        env.TargetArch, "arm64",
        "LIBGETARGV_LIB_DIR", "/opt/getargv/lib",
    )

Reads go through Lookup. The only write the resolver performs is
LLVM_CONFIG_PATH, so that the binding generator finds the same
llvm-config the resolver located.
*/
