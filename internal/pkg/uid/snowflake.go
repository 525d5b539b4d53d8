package uid

import (
	"errors"
	"hash/fnv"
	"os"
	"strconv"
	"strings"

	"github.com/bwmarrin/snowflake"
)

// ErrNodeOutOfRange is returned when SNOWFLAKE_NODE is not within 0..1023.
var ErrNodeOutOfRange = errors.New("uid: snowflake node must be between 0 and 1023")

// Snowflake generates int64 ids with bwmarrin/snowflake.
type Snowflake struct {
	node *snowflake.Node
}

// NewSnowflake builds a generator. The node number comes from SNOWFLAKE_NODE
// when set, otherwise it is derived from the hostname so replicas differ.
func NewSnowflake() (*Snowflake, error) {
	n, err := nodeNumber()
	if err != nil {
		return nil, err
	}

	node, err := snowflake.NewNode(n)
	if err != nil {
		return nil, err
	}

	return &Snowflake{node: node}, nil
}

func nodeNumber() (int64, error) {
	if v := strings.TrimSpace(os.Getenv("SNOWFLAKE_NODE")); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 || n > 1023 {
			return 0, ErrNodeOutOfRange
		}
		return n, nil
	}

	host, err := os.Hostname()
	if err != nil {
		return 0, err
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(host))
	return int64(h.Sum32() % 1024), nil
}

// Generate returns the next id.
func (s *Snowflake) Generate() int64 {
	return s.node.Generate().Int64()
}
