// Package pipeline defines the delivery pipeline stack: a CodePipeline fed by
// a CodeStar-connection source, a synth step running the build phases, and
// one deployment wave per manifest stage, each followed by its post-deploy
// steps (asset sync, cache invalidation, optional functional tests). Stages
// deploy in manifest declaration order.
package pipeline
