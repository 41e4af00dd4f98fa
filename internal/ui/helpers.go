package ui

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"
	"time"

	"github.com/five82/recordify/internal/recordify"
)

func humanizeDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return "now"
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	default:
		return fmt.Sprintf("%dh", int(d.Hours()))
	}
}

// classifyPollError returns a short label for a failed now-playing poll.
// A backend that answered with a non-2xx status is an API error whatever its
// body says; the remaining labels describe transport failures.
func classifyPollError(err error) string {
	if err == nil {
		return ""
	}

	var statusErr *recordify.StatusError
	if errors.As(err, &statusErr) {
		return "API ERROR"
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
		return "HOST NOT FOUND"
	}
	var netErr net.Error
	switch {
	case errors.Is(err, syscall.ECONNREFUSED):
		return "OFFLINE"
	case errors.Is(err, context.DeadlineExceeded):
		return "TIMEOUT"
	case errors.As(err, &netErr) && netErr.Timeout():
		return "TIMEOUT"
	}

	// Errors that lost their type on the way, e.g. through a proxy.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "decode response"):
		return "BAD RESPONSE"
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"):
		return "TIMEOUT"
	default:
		return "ERROR"
	}
}
