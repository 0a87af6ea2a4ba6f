package version

// Version is reported in the startup log. Release builds set it with
// -ldflags "-X github.com/marqueehq/marquee/pkg/version.Version=<tag>".
var Version = "dev"
