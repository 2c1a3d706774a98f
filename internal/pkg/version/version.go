// Package version 빌드 시점에 주입된 버전 정보와 실행 환경 정보를 제공합니다.
//
// 버전 값은 -ldflags로 주입합니다.
//
//	go build -ldflags "-X github.com/darkkaiser/farm-server/internal/pkg/version.appVersion=v1.2.0 \
//	                   -X github.com/darkkaiser/farm-server/internal/pkg/version.gitCommitHash=$(git rev-parse HEAD)"
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

const unknown = "unknown"

// ldflags 주입 대상. 직접 읽지 말고 Get()을 사용합니다.
var (
	appVersion    = ""
	gitCommitHash = ""
	gitTreeState  = ""
	buildDate     = ""
	buildNumber   = ""
)

var (
	current     Info
	currentOnce sync.Once

	// readBuildInfo 테스트에서 교체할 수 있도록 변수로 둡니다.
	readBuildInfo = debug.ReadBuildInfo
)

// Info 애플리케이션 빌드 정보입니다. /version 응답과 시작 로그에 사용됩니다.
type Info struct {
	Version     string `json:"version"`
	Commit      string `json:"commit"`
	BuildDate   string `json:"build_date"`
	BuildNumber string `json:"build_number"`
	GoVersion   string `json:"go_version"`
	OS          string `json:"os"`
	Arch        string `json:"arch"`
	DirtyBuild  bool   `json:"dirty_build"`
}

// Get 현재 실행 파일의 빌드 정보를 반환합니다.
func Get() Info {
	currentOnce.Do(func() {
		current = enrich(Info{
			Version:     strings.TrimSpace(appVersion),
			Commit:      strings.TrimSpace(gitCommitHash),
			BuildDate:   strings.TrimSpace(buildDate),
			BuildNumber: strings.TrimSpace(buildNumber),
			DirtyBuild:  strings.EqualFold(strings.TrimSpace(gitTreeState), "dirty"),
		})
	})
	return current
}

// enrich 비어 있는 필드를 런타임 정보와 debug.BuildInfo의 VCS 메타데이터로 채웁니다.
// ldflags 주입 없이 go run 등으로 실행된 경우에도 최소한의 정보를 확보합니다.
func enrich(bi Info) Info {
	bi.GoVersion = runtime.Version()
	bi.OS = runtime.GOOS
	bi.Arch = runtime.GOARCH

	if info, ok := readBuildInfo(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if bi.Commit == "" {
					bi.Commit = s.Value
				}
			case "vcs.time":
				if bi.BuildDate == "" {
					bi.BuildDate = s.Value
				}
			case "vcs.modified":
				if s.Value == "true" {
					bi.DirtyBuild = true
				}
			}
		}
		if bi.Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			bi.Version = info.Main.Version
		}
	}

	if bi.Version == "" {
		bi.Version = unknown
	}
	if bi.Commit == "" {
		bi.Commit = unknown
	}
	if bi.BuildDate == "" {
		bi.BuildDate = unknown
	}

	return bi
}

// ToMap 구조적 로깅용 맵으로 변환합니다.
func (i Info) ToMap() map[string]any {
	return map[string]any{
		"version":      i.Version,
		"commit":       i.Commit,
		"build_date":   i.BuildDate,
		"build_number": i.BuildNumber,
		"go_version":   i.GoVersion,
		"os":           i.OS,
		"arch":         i.Arch,
		"dirty_build":  i.DirtyBuild,
	}
}

// String "v1.2.0+dirty (commit: f25b8bf, build: 12, go1.24.0 linux/amd64)" 형태로 요약합니다.
func (i Info) String() string {
	v := i.Version
	if v == "" {
		v = unknown
	}
	if i.DirtyBuild {
		v += "+dirty"
	}

	var details []string
	if i.Commit != "" && i.Commit != unknown {
		c := i.Commit
		if len(c) > 7 {
			c = c[:7]
		}
		details = append(details, "commit: "+c)
	}
	if i.BuildNumber != "" {
		details = append(details, "build: "+i.BuildNumber)
	}
	if i.GoVersion != "" {
		details = append(details, fmt.Sprintf("%s %s/%s", i.GoVersion, i.OS, i.Arch))
	}

	if len(details) == 0 {
		return v
	}
	return fmt.Sprintf("%s (%s)", v, strings.Join(details, ", "))
}
