package frame

import "github.com/cespare/xxhash/v2"

// Hash returns a digest of the frame's layout and contents. Two frames hash
// equal iff Identical reports them equal.
func Hash(f *Frame) uint64 {
	h := xxhash.New()
	var buf []byte
	for _, c := range f.cols {
		_, _ = h.WriteString(c.Name)
		_, _ = h.Write([]byte{0, byte(c.Kind)})
		for _, v := range c.Values {
			buf = v.appendEncoded(buf[:0])
			_, _ = h.Write(buf)
		}
	}
	return h.Sum64()
}
