package hints

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/lido333/openvm/babybear"
	"github.com/pkg/errors"
)

// Stream is an ordered list of chunks of base field elements. Chunk
// boundaries only exist on the encode side.
type Stream [][]babybear.Felt

// Len is the total number of scalars.
func (s Stream) Len() int {
	n := 0
	for _, chunk := range s {
		n += len(chunk)
	}
	return n
}

func (s Stream) Flatten() []babybear.Felt {
	out := make([]babybear.Felt, 0, s.Len())
	for _, chunk := range s {
		out = append(out, chunk...)
	}
	return out
}

// Uint64s returns the canonical integer value of every scalar, chunked as s.
func (s Stream) Uint64s() [][]uint64 {
	out := make([][]uint64, len(s))
	for i, chunk := range s {
		out[i] = make([]uint64, len(chunk))
		for j, f := range chunk {
			out[i][j] = f.Uint64()
		}
	}
	return out
}

func streamFromUint64s(words [][]uint64) (Stream, error) {
	s := make(Stream, len(words))
	for i, chunk := range words {
		s[i] = make([]babybear.Felt, len(chunk))
		for j, w := range chunk {
			if w >= babybear.Modulus {
				return nil, errors.Wrapf(babybear.ErrOutOfRange, "chunk %d scalar %d: %d", i, j, w)
			}
			s[i][j] = babybear.NewFelt(w)
		}
	}
	return s, nil
}

func (s Stream) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(s.Uint64s())
}

func (s *Stream) UnmarshalCBOR(data []byte) error {
	var words [][]uint64
	if err := cbor.Unmarshal(data, &words); err != nil {
		return errors.Wrap(err, "decoding cbor stream")
	}
	v, err := streamFromUint64s(words)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Format is a stream file transport. Both preserve chunk order.
type Format string

const (
	FormatJSON Format = "json"
	FormatCBOR Format = "cbor"
)

// FormatFromPath picks CBOR for .cbor files and JSON otherwise.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".cbor") {
		return FormatCBOR
	}
	return FormatJSON
}

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatCBOR:
		return f, nil
	default:
		return "", errors.Errorf("unknown stream format %q", s)
	}
}

func EncodeStream(s Stream, format Format) ([]byte, error) {
	switch format {
	case FormatCBOR:
		return s.MarshalCBOR()
	case FormatJSON:
		return json.Marshal(s)
	default:
		return nil, errors.Errorf("unknown stream format %q", format)
	}
}

func DecodeStream(data []byte, format Format) (Stream, error) {
	var s Stream
	var err error
	switch format {
	case FormatCBOR:
		err = s.UnmarshalCBOR(data)
	case FormatJSON:
		err = errors.Wrap(json.Unmarshal(data, &s), "decoding json stream")
	default:
		err = errors.Errorf("unknown stream format %q", format)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
