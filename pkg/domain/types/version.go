package types

// Version is replaced at build time with -ldflags "-X github.com/m-mizutani/ekshello/pkg/domain/types.Version=..."
var Version = "dev"

// ServiceName is the name used for the CLI and in logs
const ServiceName = "ekshello"
