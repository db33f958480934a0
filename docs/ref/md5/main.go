// MD5 reference vectors in Go

package main

import (
	"crypto/md5"
	"fmt"

	md5stages "github.com/markkurossi/md5stages/md5"
)

func main() {
	for _, input := range []string{
		"",
		"abc",
		"The quick brown fox jumps over the lazy dog",
		"-------------------------------------------------------+",
		"----------------------------------------------------------------+!!",
	} {
		fmt.Printf("%q\n", input)
		fmt.Printf("%x\n", md5stages.Sum([]byte(input), nil))
		fmt.Printf("%x\n", md5.Sum([]byte(input)))
		fmt.Println()
	}
}
