package id_gen

import (
	"os"
	"strconv"
	"strings"
	"time"

	"blog_api/biz/util/ip"

	"github.com/bytedance/gopkg/lang/fastrand"
)

var pid = strconv.Itoa(os.Getpid())

// NewID builds a log id from the current millisecond, the host address,
// the process id and a random suffix. Ids sort roughly by creation time.
func NewID() string {
	return newID(time.Now())
}

func newID(now time.Time) string {
	var sb strings.Builder
	sb.Grow(40)
	sb.WriteString(strconv.FormatInt(now.UnixMilli(), 36))
	sb.WriteString(ip.IPv4Hex())
	sb.WriteString(pid)
	sb.WriteString(strconv.FormatUint(fastrand.Uint64(), 36))
	return sb.String()
}
