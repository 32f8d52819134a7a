// Package sink writes matches to the user-facing output.
//
// Each match becomes one line:
//
//	public <base64 public key>  private <base64 private key>
//
// The line is assembled in full and handed to the underlying writer in a
// single Write under a mutex, then flushed if the writer buffers, so
// concurrent workers never interleave output.
package sink
