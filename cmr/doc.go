// Package cmr is the public façade: the small set of entry points a
// caller actually reaches for (totally-unimodularity, regularity,
// (co)network recognition, and the unimodular/k-modular family built as
// pre-processing on top of testTU), assembled from matrix, decomp, env,
// graphic and camion underneath.
//
// Grounded on matrix/builder.go's top-level "construct from input,
// validate, delegate" entrypoint shape: every exported function here
// validates its input's entry range first and shapes the result into one
// of this package's small Result structs. Most entry points build or reuse
// an env.Environment and delegate to decomp.Run; TestNetwork and
// TestConetwork call graphic.DirectTest and graphic.VerifyTernary
// directly, without an environment.
package cmr
