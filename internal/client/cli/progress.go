package cli

import (
	"fmt"
	"io"

	"github.com/abitblue/filebin/internal/client/upload"
)

// printProgress returns a ProgressFunc rendering a carriage-returned running
// total. With an unknown total (stdin) only the byte count is shown.
func printProgress(w io.Writer) upload.ProgressFunc {
	return func(transferred, total int64) {
		if total <= 0 {
			fmt.Fprintf(w, "Transferred: %d bytes\r", transferred)
			return
		}
		percent := float64(transferred) / float64(total) * 100
		fmt.Fprintf(w, "Transferred: %d of %d bytes (%.2f %%)\r", transferred, total, percent)
	}
}
