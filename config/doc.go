// Package config loads calc settings from a YAML file.
//
// A configuration file looks like this:
//
//	parser:
//	  trailing_input: error   # or "allow" to evaluate the valid prefix
//	  max_depth: 256          # 0 for the default, negative for no limit
//	output:
//	  format: text            # or "json"
//	log:
//	  verbosity: 0
//	  file: ""                # empty logs to stderr
//	watch:
//	  debounce: 100ms
//	  extensions: [".calc"]
//
// Environment variables override the file: CALC_TRAILING_INPUT,
// CALC_MAX_DEPTH, CALC_OUTPUT_FORMAT, CALC_LOG_FILE.
package config
