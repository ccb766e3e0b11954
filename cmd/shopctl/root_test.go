package main

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strings"
	"testing"

	"healthshop-client/internal/api"
)

func TestFriendlyErrorMapsTimeouts(t *testing.T) {
	err := &url.Error{Op: "Get", URL: "http://localhost:8080/api/cart", Err: context.DeadlineExceeded}
	got := friendlyError(err)
	if !strings.Contains(got.Error(), "Request timed out") {
		t.Fatalf("expected timeout message, got %q", got)
	}
}

func TestFriendlyErrorMapsUnreachableServer(t *testing.T) {
	err := &url.Error{
		Op:  "Get",
		URL: "http://localhost:8080/api/cart",
		Err: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")},
	}
	got := friendlyError(err)
	if !strings.Contains(got.Error(), "Cannot connect to server") {
		t.Fatalf("expected unreachable message, got %q", got)
	}
}

func TestFriendlyErrorPassesApplicationErrorsThrough(t *testing.T) {
	apiErr := &api.APIError{Status: 400, Message: "Coupon has expired"}
	if got := friendlyError(apiErr); got != apiErr {
		t.Fatalf("expected backend error untouched, got %v", got)
	}
	if got := friendlyError(nil); got != nil {
		t.Fatalf("expected nil untouched, got %v", got)
	}
}
