// Package juju is a minimal client for the Juju controller API.
//
// The controller speaks JSON-RPC over a TLS websocket. A Session logs in to
// the controller endpoint once and opens a short lived model connection for
// every status fetch:
//
//	d, err := juju.NewDialer(caPEM)
//	s, err := d.Dial(ctx, "10.0.0.1:17070", "admin", password)
//	defer s.Close()
//	models, err := s.ListModels(ctx)         // name -> uuid
//	tree, err := s.FetchStatus(ctx, models["default"])
//
// Only the facades needed to build the machine inventory are implemented:
// Admin.Login, ModelManager.ListModels and Client.FullStatus.
package juju
