package zdd

import (
	"encoding/binary"
	"io"

	"github.com/klauspost/compress/zstd"
)

// StreamedZDD is the handle returned once a StreamWriter closes: just
// enough bookkeeping to know what was written, without the in-memory node
// array a regular ZDD carries. Reduce, Count and Sample all take *ZDD, not
// *StreamedZDD, so a streamed diagram cannot reach them by construction —
// "in-memory operations become unavailable" falls out of the type system
// rather than a runtime guard.
type StreamedZDD struct {
	Root     NodeID
	NumVars  int
	NumNodes int
}

const (
	recordLevel byte = 0
	recordNode  byte = 1
)

// StreamWriter appends ZDD arcs to a zstd-compressed stream as the
// construction engine discovers them, instead of holding every node in
// memory (HDD streaming mode).
type StreamWriter struct {
	enc      *zstd.Encoder
	numNodes int
	curLevel int
}

// NewStreamWriter wraps w in a zstd encoder and prepares to receive nodes
// level by level, mirroring Builder's StartLevel/AddNode/SetArc protocol.
func NewStreamWriter(w io.Writer) (*StreamWriter, error) {
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return nil, err
	}
	return &StreamWriter{enc: enc, curLevel: -1}, nil
}

// StartLevel writes a level boundary marker so a reader can recover level
// ranges without a separate index file. Levels must be started in
// increasing order, same as Builder.
func (sw *StreamWriter) StartLevel(level int) error {
	if level <= sw.curLevel {
		panic("zdd: StreamWriter.StartLevel called out of order")
	}
	sw.curLevel = level
	return sw.writeRecord(recordLevel, int64(level), 0, 0)
}

// WriteNode appends one node's arcs to the stream and returns the id it
// was assigned (terminal slots 0,1 are implicit and never streamed).
func (sw *StreamWriter) WriteNode(lo, hi NodeID) (NodeID, error) {
	id := NodeID(sw.numNodes + 2)
	sw.numNodes++
	return id, sw.writeRecord(recordNode, int64(id), int64(lo), int64(hi))
}

func (sw *StreamWriter) writeRecord(kind byte, a, b, c int64) error {
	var buf [1 + 8*3]byte
	buf[0] = kind
	binary.LittleEndian.PutUint64(buf[1:9], uint64(a))
	binary.LittleEndian.PutUint64(buf[9:17], uint64(b))
	binary.LittleEndian.PutUint64(buf[17:25], uint64(c))
	_, err := sw.enc.Write(buf[:])
	return err
}

// Finish flushes and closes the underlying zstd encoder, returning a
// handle describing what was written.
func (sw *StreamWriter) Finish(root NodeID, numVars int) (*StreamedZDD, error) {
	if err := sw.enc.Close(); err != nil {
		return nil, err
	}
	return &StreamedZDD{Root: root, NumVars: numVars, NumNodes: sw.numNodes}, nil
}

// StreamReader decodes a stream written by StreamWriter, one record at a
// time, so a consumer can rebuild level boundaries or simply count nodes
// without materializing the whole diagram.
type StreamReader struct {
	dec *zstd.Decoder
}

// NewStreamReader wraps r in a zstd decoder.
func NewStreamReader(r io.Reader) (*StreamReader, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return &StreamReader{dec: dec}, nil
}

// Record is one decoded entry from a streamed diagram: either a level
// marker (IsLevel true, Level set) or a node (Lo/Hi/ID set).
type Record struct {
	IsLevel  bool
	Level    int
	ID       NodeID
	Lo, Hi   NodeID
}

// Next reads the next record, or io.EOF once the stream is exhausted.
func (sr *StreamReader) Next() (Record, error) {
	var buf [1 + 8*3]byte
	if _, err := io.ReadFull(sr.dec, buf[:]); err != nil {
		return Record{}, err
	}
	a := int64(binary.LittleEndian.Uint64(buf[1:9]))
	b := int64(binary.LittleEndian.Uint64(buf[9:17]))
	c := int64(binary.LittleEndian.Uint64(buf[17:25]))
	if buf[0] == recordLevel {
		return Record{IsLevel: true, Level: int(a)}, nil
	}
	return Record{ID: NodeID(a), Lo: NodeID(b), Hi: NodeID(c)}, nil
}

// Close releases the decoder's resources.
func (sr *StreamReader) Close() error {
	sr.dec.Close()
	return nil
}
