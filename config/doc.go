/*
Package config loads exporter settings from a YAML file, a .env file and the
process environment, in that order of increasing precedence.

Example file:

	aws:
	  region: us-east-1
	  profile: dev
	table: app-data
	output: export.csv
	sample_size: 200
	filters:
	  - EntityType=USER
	scan:
	  page_size: 500
	  max_retries: 5
	  retry_backoff: 2s
	log:
	  level: debug
	aliases:
	  sort_key: [range_key]

Recognized environment variables: AWS_REGION, AWS_PROFILE, AWS_ACCESS_KEY,
AWS_SECRET_KEY, AWS_ENDPOINT_URL, DDB_EXPORT_TABLE, DDB_EXPORT_INPUT, DDB_EXPORT_OUTPUT,
DDB_EXPORT_SAMPLE_SIZE, DDB_EXPORT_LOG_LEVEL and DDB_EXPORT_LOG_PRETTY.
*/
package config
