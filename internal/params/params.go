package params

const (
	// Limb widths the target library can be built with.
	BitsPerLimb32 = 32
	BitsPerLimb64 = 64

	// BitsPerLimbFixed is the limb width used for fixed-style encodings,
	// where a single case covers every architecture.
	BitsPerLimbFixed = BitsPerLimb64

	// Miller-Rabin iterations used to vet pool moduli.
	// 20 is the same number that Go uses internally.
	PrimalityIterations = 20

	// BitsRandomOperand is the size of operands drawn randomly on top of
	// the fixed corpus.
	BitsRandomOperand = 256
)

// StatusSuccess trails every row this generator emits. Failure statuses are
// produced by the negative-case generator, not here.
const StatusSuccess = "0"

// Build-time dependencies guarding limb-width specific cases.
const (
	DepInt32 = "MBEDTLS_HAVE_INT32"
	DepInt64 = "MBEDTLS_HAVE_INT64"
)
