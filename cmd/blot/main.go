// Command blot computes a multihash object hash of a JSON document.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/arnau/blot/internal/log"
	"github.com/arnau/blot/multihash"
	"github.com/arnau/blot/objecthash"
	"github.com/arnau/blot/value"
)

func main() {
	algorithm := flag.String("algorithm", "sha2-256", "hash algorithm: "+strings.Join(multihash.Names(), ", "))
	sequence := flag.String("sequence", "list", "how to read JSON arrays: list or set")
	verbose := flag.Bool("verbose", false, "print code, length and digest separately")
	flag.Parse()

	log.SetFlags(0)
	if *verbose {
		log.SetLevel(log.Debug)
	}

	alg, ok := multihash.Lookup(*algorithm)
	if !ok {
		log.Fatalf("blot: unknown algorithm %q (want one of %s)", *algorithm, strings.Join(multihash.Names(), ", "))
	}

	var schema value.Schema
	switch *sequence {
	case "list":
		schema = value.SeqAsList
	case "set":
		schema = value.SeqAsSet
	default:
		log.Fatalf("blot: unknown sequence mode %q (want list or set)", *sequence)
	}

	data, err := readInput(flag.Args())
	if err != nil {
		log.Fatal(err)
	}

	v, err := value.Parse(data, schema)
	if err != nil {
		log.Fatal(errors.Wrap(err, "blot"))
	}

	h := objecthash.Hash(v, alg)
	log.Debugf("algorithm=%s code=%x length=%d digest=%x", alg.Name(), alg.Code().Bytes(), alg.Length(), h.Digest)
	fmt.Println(h.String())
}

func readInput(args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("blot: expected exactly one argument (a JSON document, or - for stdin), got %d", len(args))
	}
	if args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	return []byte(args[0]), nil
}
