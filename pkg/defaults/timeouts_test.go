// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package defaults

import (
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		// Controller timeouts
		{"ControllerConnectTimeout", ControllerConnectTimeout, 5 * time.Second, 2 * time.Minute},
		{"ControllerRequestTimeout", ControllerRequestTimeout, 10 * time.Second, 5 * time.Minute},
		{"ControllerHandshakeTimeout", ControllerHandshakeTimeout, 1 * time.Second, 30 * time.Second},
		{"ControllerCloseTimeout", ControllerCloseTimeout, 100 * time.Millisecond, 10 * time.Second},

		// Cycle
		{"CollectInterval", CollectInterval, 1 * time.Minute, 1 * time.Hour},

		// Server timeouts
		{"ServerReadTimeout", ServerReadTimeout, 5 * time.Second, 30 * time.Second},
		{"ServerWriteTimeout", ServerWriteTimeout, 15 * time.Second, 60 * time.Second},
		{"ServerIdleTimeout", ServerIdleTimeout, 30 * time.Second, 300 * time.Second},
		{"ServerShutdownTimeout", ServerShutdownTimeout, 10 * time.Second, 60 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) exceeds maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestHandshakeTimeoutLessThanConnect(t *testing.T) {
	if ControllerHandshakeTimeout >= ControllerConnectTimeout {
		t.Errorf("ControllerHandshakeTimeout (%v) should be less than ControllerConnectTimeout (%v)",
			ControllerHandshakeTimeout, ControllerConnectTimeout)
	}
}

func TestServerTimeoutRelationships(t *testing.T) {
	if ServerReadHeaderTimeout >= ServerReadTimeout {
		t.Errorf("ServerReadHeaderTimeout (%v) should be less than ServerReadTimeout (%v)",
			ServerReadHeaderTimeout, ServerReadTimeout)
	}
	if ServerReadTimeout >= ServerIdleTimeout {
		t.Errorf("ServerReadTimeout (%v) should be less than ServerIdleTimeout (%v)",
			ServerReadTimeout, ServerIdleTimeout)
	}
}

func TestScrapeDefaults(t *testing.T) {
	if ServerPort <= 0 || ServerPort > 65535 {
		t.Errorf("ServerPort %d is not a valid port", ServerPort)
	}
	if ServerRateLimitBurst < ServerRateLimit {
		t.Errorf("ServerRateLimitBurst (%d) should not be below ServerRateLimit (%d)",
			ServerRateLimitBurst, ServerRateLimit)
	}
	if ModelConcurrency < 1 {
		t.Errorf("ModelConcurrency must be at least 1, got %d", ModelConcurrency)
	}
}
