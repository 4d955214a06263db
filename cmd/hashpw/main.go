package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/vuapod/orderstats-backend/pkg/config"
	"github.com/vuapod/orderstats-backend/pkg/security"
)

// Generates the argon2id hash expected in ORDERSTATS_AUTH_PASSWORD_HASH.
func main() {
	var password string
	if len(os.Args) > 1 {
		password = os.Args[1]
	} else {
		fmt.Fprint(os.Stderr, "password: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Fprintf(os.Stderr, "read password: %v\n", err)
			os.Exit(1)
		}
		password = strings.TrimRight(line, "\r\n")
	}

	if password == "" {
		fmt.Fprintln(os.Stderr, "password must not be empty")
		os.Exit(1)
	}

	hash, err := security.HashPassword(password, config.DefaultPasswordConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash password: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(hash)
}
