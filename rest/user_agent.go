package rest

import (
	"github.com/rpaste-cli/rpaste/useragent"
)

func GetUserAgent() string {
	return useragent.Current().String()
}
