package rest

import "strconv"

// Where the content of an upload comes from.
type Source int

const (
	SourceFile Source = iota
	SourceURL
	SourceRemote
	SourceStream
)

// Kind of upload, resolved once from the source and the one-shot setting.
type Kind int

const (
	KindFile Kind = iota
	KindOneshotFile
	KindURL
	KindOneshotURL
	KindRemote
	KindStream
	KindOneshotStream
)

// KindFor returns the upload kind for a source. Remote fetches have no
// one-shot variant.
func KindFor(source Source, oneshot bool) Kind {
	switch source {
	case SourceFile:
		if oneshot {
			return KindOneshotFile
		}
		return KindFile
	case SourceURL:
		if oneshot {
			return KindOneshotURL
		}
		return KindURL
	case SourceRemote:
		return KindRemote
	case SourceStream:
		if oneshot {
			return KindOneshotStream
		}
		return KindStream
	default:
		panic("unknown upload source: " + strconv.Itoa(int(source)))
	}
}

// Name of the multipart field the server expects for this kind.
func (k Kind) FieldName() string {
	switch k {
	case KindFile, KindStream:
		return "file"
	case KindOneshotFile, KindOneshotStream:
		return "oneshot"
	case KindURL:
		return "url"
	case KindOneshotURL:
		return "oneshot_url"
	case KindRemote:
		return "remote"
	default:
		panic("unknown upload kind: " + strconv.Itoa(int(k)))
	}
}

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindOneshotFile:
		return "oneshot file"
	case KindURL:
		return "url"
	case KindOneshotURL:
		return "oneshot url"
	case KindRemote:
		return "remote url"
	case KindStream:
		return "stream"
	case KindOneshotStream:
		return "oneshot stream"
	default:
		return "unknown"
	}
}
