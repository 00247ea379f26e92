package assetbridge

import (
	"fmt"
	"io"
	"runtime"
)

// Populated during build via -ldflags
var (
	Version   = "v0.1.0"
	GitRev    = "undefined"
	GitBranch = "undefined"
	BuildDate = "Fri, 17 Jun 1988 01:58:00 +0200"
)

// ExtensionABI identifies the layout of the chain extension requests and
// responses served by this build. Contracts compiled against a different
// ABI must not be routed here.
const ExtensionABI = "assets/v1"

// PrintVersion prints version info into the provided io.Writer.
func PrintVersion(w io.Writer) {
	fmt.Fprint(w, GetVersion().String())
}

type FullVersion struct {
	Version      string
	GitRev       string
	GitBranch    string
	BuildDate    string
	ExtensionABI string
	GoVersion    string
	OS           string
	Arch         string
}

func GetVersion() FullVersion {
	return FullVersion{
		Version:      Version,
		GitRev:       GitRev,
		GitBranch:    GitBranch,
		BuildDate:    BuildDate,
		ExtensionABI: ExtensionABI,
		GoVersion:    runtime.Version(),
		OS:           runtime.GOOS,
		Arch:         runtime.GOARCH,
	}
}

// KeysAndValues flattens the version into pairs for structured loggers.
func (f FullVersion) KeysAndValues() []interface{} {
	return []interface{}{
		"gitRevision", f.GitRev,
		"gitBranch", f.GitBranch,
		"extensionABI", f.ExtensionABI,
		"goVersion", f.GoVersion,
		"built", f.BuildDate,
		"os/arch", f.OS + "/" + f.Arch,
	}
}

func (f FullVersion) String() string {
	return fmt.Sprintf("Version:       %s\n"+
		"Git revision:  %s\n"+
		"Git branch:    %s\n"+
		"Extension ABI: %s\n"+
		"Go version:    %s\n"+
		"Built:         %s\n"+
		"OS/Arch:       %s/%s\n",
		f.Version, f.GitRev, f.GitBranch, f.ExtensionABI,
		f.GoVersion, f.BuildDate, f.OS, f.Arch)
}
