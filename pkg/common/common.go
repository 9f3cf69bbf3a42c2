package common

import (
	"fmt"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/araddon/dateparse"
	"github.com/bwmarrin/snowflake"
)

const (
	ENABLED  = "enabled"
	DISABLED = "disabled"
)

var (
	snowflakeNode *snowflake.Node
	snowflakeOnce sync.Once
)

func initSnowflake() {
	nodeID := int64(os.Getpid() % 1024)
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		// Fall back to a random node id; collisions across processes are
		// acceptable for a single-instance deployment.
		node, err = snowflake.NewNode(rand.Int63n(1024))
		if err != nil {
			panic(fmt.Sprintf("snowflake init: %v", err))
		}
	}
	snowflakeNode = node
}

// UUIDint64 returns a time-ordered unique identifier.
func UUIDint64() int64 {
	snowflakeOnce.Do(initSnowflake)
	return snowflakeNode.Generate().Int64()
}

// UUID returns the string form of UUIDint64.
func UUID() string {
	snowflakeOnce.Do(initSnowflake)
	return snowflakeNode.Generate().String()
}

// ParseDate parses a date in any common layout and truncates it to
// midnight in the local timezone.
func ParseDate(value string) (time.Time, error) {
	t, err := dateparse.ParseIn(value, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return TruncateDate(t), nil
}

// TruncateDate drops the time-of-day component.
func TruncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DateEqual reports whether two instants fall on the same calendar day.
func DateEqual(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// FormatDate renders a date the way the tracking views display it.
func FormatDate(t time.Time) string {
	return t.Format("Monday, Jan 2")
}

// FormatMoney renders an amount with two decimals for display.
func FormatMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
