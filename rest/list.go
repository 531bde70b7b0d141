package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/rpaste-cli/rpaste/pasteerr"
)

const (
	creationDateUnavailable = "info not available"

	// Width of an ISO-8601 timestamp without fractional seconds.
	timestampWidth = 19

	// Narrowest size column, wide enough for its header.
	minSizeWidth = 4

	noFilesMessage = "No files on server :("
)

// ListItem describes a file stored on the server.
type ListItem struct {
	FileName        string  `json:"file_name"`
	FileSize        uint64  `json:"file_size"`
	CreationDateUTC string  `json:"creation_date_utc"`
	ExpiresAtUTC    *string `json:"expires_at_utc"`
}

func (i *ListItem) UnmarshalJSON(data []byte) error {
	type plain ListItem
	item := plain{CreationDateUTC: creationDateUnavailable}
	if err := json.Unmarshal(data, &item); err != nil {
		return err
	}
	*i = ListItem(item)
	return nil
}

// Returns the expiry timestamp, or "" if the file never expires.
func (i ListItem) Expiry() string {
	if i.ExpiresAtUTC == nil {
		return ""
	}
	return *i.ExpiresAtUTC
}

// ParseList decodes the JSON array returned by the list endpoint.
func ParseList(body []byte) ([]ListItem, error) {
	var items []ListItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, pasteerr.Wrap(pasteerr.IO, errors.Wrap(err, "failed to decode file list"))
	}
	return items, nil
}

// WriteTable renders items as a table with name, size, creation and expiry
// columns.
func WriteTable(w io.Writer, items []ListItem) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, noFilesMessage)
		return wrapWriteErr(err)
	}

	nameWidth := 0
	sizeWidth := minSizeWidth
	for _, item := range items {
		if n := utf8.RuneCountInString(item.FileName); n > nameWidth {
			nameWidth = n
		}
		if n := len(strconv.FormatUint(item.FileSize, 10)); n > sizeWidth {
			sizeWidth = n
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s | %s | %s | %s\n",
		center("Name", nameWidth),
		center("Size", sizeWidth),
		center("Creation (UTC)", timestampWidth),
		center("Expiry (UTC)", timestampWidth))
	fmt.Fprintf(&sb, "%s-|-%s-|-%s-|-%s\n",
		strings.Repeat("-", nameWidth),
		strings.Repeat("-", sizeWidth),
		strings.Repeat("-", timestampWidth),
		strings.Repeat("-", timestampWidth))
	for _, item := range items {
		fmt.Fprintf(&sb, "%-*s | %*d | %-*s | %s\n",
			nameWidth, item.FileName,
			sizeWidth, item.FileSize,
			timestampWidth, item.CreationDateUTC,
			item.Expiry())
	}

	_, err := io.WriteString(w, sb.String())
	return wrapWriteErr(err)
}

// Centers s in width columns. An odd leftover goes to the right.
func center(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

func wrapWriteErr(err error) error {
	if err != nil {
		return pasteerr.Wrap(pasteerr.IO, err)
	}
	return nil
}
