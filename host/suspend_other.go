//go:build !unix

package host

import (
	"bufio"
	"fmt"
	"os"
)

// waitForeground blocks until a line is entered; there is no job control to stop the process
func waitForeground() {
	fmt.Fprint(os.Stdout, "touchport suspended, press Enter to resume\n")
	bufio.NewReader(os.Stdin).ReadString('\n')
}
