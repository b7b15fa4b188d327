/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package i18n resolves UI message keys to display text.
package i18n

import (
	_ "embed"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

//go:embed messages_en.yaml
var defaultMessages []byte

// Bundle holds display text keyed by message key.
type Bundle struct {
	messages map[string]string
}

// DefaultBundle returns the bundle built from the embedded English messages.
func DefaultBundle() *Bundle {
	messages, err := parseMessages(defaultMessages)
	if err != nil {
		panic("embedded message bundle is invalid: " + err.Error())
	}
	return &Bundle{messages: messages}
}

// LoadBundle loads the messages at the given path on top of the default bundle.
func LoadBundle(path string) (*Bundle, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	overrides, err := parseMessages(data)
	if err != nil {
		return nil, err
	}

	bundle := DefaultBundle()
	for key, text := range overrides {
		bundle.messages[key] = text
	}
	return bundle, nil
}

// Resolve returns the display text of the given key, or the key itself when it is unknown.
func (b *Bundle) Resolve(key string) string {
	if text, ok := b.messages[key]; ok {
		return text
	}
	return key
}

func parseMessages(data []byte) (map[string]string, error) {
	messages := make(map[string]string)
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
