// Package misc holds build information.
package misc

// Set by the linker:
//
//	go build -ldflags "-X crcss/misc.version=1.0.0 -X crcss/misc.gitHash=$(git rev-parse --short HEAD)"
var (
	version = "dev"
	gitHash = "unknown"
)

const appName = "crcss"

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
