package ibininfo

import (
	"fmt"
	"runtime"
	"strings"
)

/*
编译时注入：

go build -ldflags "-X 'github.com/cute-angelia/go-xrandom/utils/ibininfo.Version=$(git describe --tags --always)' \
                   -X 'github.com/cute-angelia/go-xrandom/utils/ibininfo.GitCommit=$(git log -1 --format=%h)' \
                   -X 'github.com/cute-angelia/go-xrandom/utils/ibininfo.GitStatus=$(git status --porcelain)' \
                   -X 'github.com/cute-angelia/go-xrandom/utils/ibininfo.BuildTime=$(date '+%Y-%m-%d %H:%M:%S')'" ./cmd/xrandom
*/

var (
	Version   = "dev"
	GitCommit = "unknown"
	GitStatus = ""
	BuildTime = "unknown"
)

type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	GitStatus string `json:"git_status"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
	OsArch    string `json:"os_arch"`
}

// Get 当前二进制的构建信息
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		GitStatus: beautyStatus(GitStatus),
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		OsArch:    runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// GitStatus 为空说明编译时工作区干净；多行合并成一行
func beautyStatus(status string) string {
	if strings.TrimSpace(status) == "" {
		return "cleanly"
	}
	return strings.NewReplacer("\r\n", " |", "\n", " |").Replace(strings.TrimSpace(status))
}

// String 多行格式
func (i Info) String() string {
	return fmt.Sprintf("Version=%s\nGitCommit=%s\nGitStatus=%s\nBuildTime=%s\nGoVersion=%s\nruntime=%s\n",
		i.Version, i.GitCommit, i.GitStatus, i.BuildTime, i.GoVersion, i.OsArch)
}
