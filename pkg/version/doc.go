// Package version parses the release number reported by a Juju controller
// at login, for example "2.9.29", "3.4-beta1" or "2.9.29.1".
//
//	v, err := version.ParseVersion(serverVersion)
//	if err == nil && !v.Supported() {
//	    slog.Warn("controller older than supported minimum", "version", v)
//	}
package version
