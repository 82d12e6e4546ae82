//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package wire

import "io"

// pipeHalf adapts a pair of io.Pipe ends into a single io.ReadWriter.
type pipeHalf struct {
	r *io.PipeReader
	w *io.PipeWriter
}

func (p *pipeHalf) Read(buf []byte) (int, error)  { return p.r.Read(buf) }
func (p *pipeHalf) Write(buf []byte) (int, error) { return p.w.Write(buf) }
func (p *pipeHalf) Close() error {
	p.r.Close()
	return p.w.Close()
}

// Pipe returns two connected Conns, reading from each other's writes,
// for wiring a Sender and Receiver together in a single process
// without a real network socket.
func Pipe() (*Conn, *Conn) {
	ar, aw := io.Pipe()
	br, bw := io.Pipe()

	a := &pipeHalf{r: ar, w: bw}
	b := &pipeHalf{r: br, w: aw}

	return New(a), New(b)
}
