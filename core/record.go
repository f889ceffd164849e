package core

import (
	"bytes"
	"path/filepath"
	"runtime"
	"strconv"
	"time"
)

// Record represents one logging call with all its metadata. Records are
// ephemeral: built and consumed within a single Emit call, never shared.
type Record struct {
	Time     time.Time
	Level    Level
	Message  string
	Args     []Value
	Site     CallSite
	ThreadID uint64
}

// CallSite contains information about the call expression
type CallSite struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// Caller captures the call site skip frames above the caller of Caller
func Caller(skip int) CallSite {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallSite{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		// runtime reports "path/to/pkg.Func"; keep "pkg.Func"
		funcName = filepath.Base(fn.Name())
	}

	return CallSite{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  funcName,
		Defined:   true,
	}
}

var goroutinePrefix = []byte("goroutine ")

// ThreadID returns the id of the calling goroutine, parsed from the
// runtime.Stack header line "goroutine N [running]:". There is no
// supported API for this; the header format has been stable since Go 1.
func ThreadID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	header := bytes.TrimPrefix(buf[:n], goroutinePrefix)
	i := bytes.IndexByte(header, ' ')
	if i < 0 {
		return 0
	}
	id, err := strconv.ParseUint(string(header[:i]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
