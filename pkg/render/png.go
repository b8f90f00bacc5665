package render

import (
	"bytes"
	"encoding/binary"

	"github.com/rangeviz/rangeviz/pkg/errors"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// PNGDimensions reads the pixel dimensions from a PNG header without
// decoding the image. The IHDR chunk is mandated to come first, so 24
// bytes past the signature is all that is inspected.
func PNGDimensions(data []byte) (width, height int, err error) {
	if len(data) < 33 || !bytes.HasPrefix(data, pngSignature) {
		return 0, 0, errors.New(errors.ErrCodeEngineFailure, "not a PNG image")
	}
	if !bytes.Equal(data[12:16], []byte("IHDR")) {
		return 0, 0, errors.New(errors.ErrCodeEngineFailure, "malformed PNG: IHDR chunk not first")
	}
	width = int(binary.BigEndian.Uint32(data[16:20]))
	height = int(binary.BigEndian.Uint32(data[20:24]))
	if width <= 0 || height <= 0 {
		return 0, 0, errors.New(errors.ErrCodeEngineFailure, "malformed PNG: zero dimension")
	}
	return width, height, nil
}
