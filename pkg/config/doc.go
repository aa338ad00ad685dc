// Package config loads the exporter configuration from a YAML file.
//
// The file has five sections:
//
//	debug: false
//	exporter:
//	  port: 5000
//	  collect_interval: 15      # minutes
//	  model_concurrency: 1
//	customer:
//	  name: example_customer
//	  cloud_name: example_cloud
//	juju:
//	  controller_endpoint: ["10.0.0.1:17070", "10.0.0.2:17070"]
//	  controller_cacert: |
//	    -----BEGIN CERTIFICATE-----
//	  username: admin
//	  password: secret
//	detection:
//	  virt_macs: ["52:54:00", "fa:16:3e"]
//	  skip_interfaces: ["lxdbr", "fan-"]
//
// JUJU_EXPORTER_PASSWORD and JUJU_EXPORTER_PORT override the file. Every
// validation failure is an INVALID_CONFIG error and is fatal at startup.
package config
