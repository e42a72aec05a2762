package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/stemsi/acad-service/internal/config"
	"github.com/stemsi/acad-service/internal/service"
	"golang.org/x/term"
)

func main() {
	var (
		subject string
		role    string
		ttl     time.Duration
	)
	flag.StringVar(&subject, "sub", "", "Token subject (required)")
	flag.StringVar(&role, "role", "admin", "Role claim")
	flag.DurationVar(&ttl, "ttl", 0, "Token lifetime; defaults to JWT_EXPIRY_HOURS")
	flag.Parse()

	subject = strings.TrimSpace(subject)
	if subject == "" {
		fmt.Fprintln(os.Stderr, "Error: -sub is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()
	if ttl > 0 {
		cfg.JWTExpiry = ttl
	}

	// ─── Secret ────────────────────────────────────────────────────────
	if cfg.JWTSecret == "" {
		if !term.IsTerminal(int(syscall.Stdin)) {
			fmt.Fprintln(os.Stderr, "Error: JWT_SECRET is not set and stdin is not a terminal")
			os.Exit(1)
		}
		fmt.Fprint(os.Stderr, "Enter JWT secret: ")
		secret, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error reading secret")
			os.Exit(1)
		}
		cfg.JWTSecret = string(secret)
	}
	if cfg.JWTSecret == "" {
		fmt.Fprintln(os.Stderr, "Error: secret must not be empty")
		os.Exit(1)
	}

	token, err := service.NewAuthService(cfg).IssueToken(subject, role)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Token on stdout alone so it can be captured with $(...).
	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "Issued token for %s (role=%s, expires in %s)\n", subject, role, cfg.JWTExpiry)
}
