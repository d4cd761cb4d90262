/*
Package config reads process-environment defaults for the engine.

Settings apply only where a mock's own configuration leaves a field unset:

	MOCKFORGE_MODE=strict        # default behavior mode for new mocks
	MOCKFORGE_LOG_LEVEL=debug    # default engine log level
	MOCKFORGE_CHAOS_DISABLED=1   # suppress all chaos policies

Load caches after the first read; use Parse to bypass the cache in tests.
*/
package config
