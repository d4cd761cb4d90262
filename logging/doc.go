/*
Package logging builds the zerolog loggers the engine uses for diagnostics.

Mocks stay silent by default. Passing a level turns on dispatch traces —
which setup resolved, whether chaos triggered, what verification observed:

	logger, err := logging.New(logging.Config{Level: "debug", Pretty: true})
	m, err := mockforge.New(mockforge.Config{Name: "store", Logger: &logger})
*/
package logging
