// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables.

# Usage

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Flags take precedence over environment variables:

  - -p / PORT: server port (default: 8080)
  - -d / DATABASE_URL: database connection string (required)
  - -t / DATABASE_TYPE: "postgres" (default) or "sqlite"
  - -max-agents / MAX_AGENTS: distribution cap (default: 5)
  - -token-salt / TOKEN_SALT: session token HMAC secret (required)

# Distribution Cap

MaxAgents bounds how many agents one upload is spread across. The default
of 5 is a deliberate policy constant kept from the original deployment,
not a derived value; raising it changes which agent each row lands on.
*/
package cliparse
