package useragent

import (
	"fmt"
	"regexp"
	"runtime"

	ver "github.com/hashicorp/go-version"
	"github.com/pkg/errors"

	"github.com/rpaste-cli/rpaste/version"
)

const product = "rpaste"

var (
	uaRegexp = regexp.MustCompile(`^rpaste\/(.*) \((.*); (.*)\)$`)
)

// Identifies the client on every request it sends.
type UA struct {
	// Semantic version of the CLI.
	Version *ver.Version

	// OS and architecture that the CLI is running on.
	OS   string
	Arch string
}

// The user agent of this build.
func Current() UA {
	return UA{
		Version: version.ReleaseVersion(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
}

func (ua UA) String() string {
	return fmt.Sprintf("%s/%s (%s; %s)", product, ua.Version, ua.OS, ua.Arch)
}

func FromString(s string) (UA, error) {
	matches := uaRegexp.FindStringSubmatch(s)
	if len(matches) != 4 {
		return UA{}, errors.Errorf("expected 4 matched groups, got %d", len(matches))
	}

	v, err := ver.NewSemver(matches[1])
	if err != nil {
		return UA{}, errors.Wrapf(err, `failed to parse "%s" as a semantic version`, matches[1])
	}

	return UA{
		Version: v,
		OS:      matches[2],
		Arch:    matches[3],
	}, nil
}
