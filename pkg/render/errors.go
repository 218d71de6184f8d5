package render

import "errors"

// ErrBufferAllocFailed is surfaced by Driver.Update when a frame's scratch
// buffers cannot be allocated; the driver recovers the underlying panic
// (an out-of-memory allocation failure has no meaningful recovery value)
// and reports it through this sentinel instead.
var ErrBufferAllocFailed = errors.New("render: frame buffer allocation failed")
