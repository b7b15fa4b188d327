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

package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type BundleTestSuite struct {
	suite.Suite
}

func TestBundleSuite(t *testing.T) {
	suite.Run(t, new(BundleTestSuite))
}

func (suite *BundleTestSuite) TestDefaultBundle() {
	bundle := DefaultBundle()

	assert.Equal(suite.T(), "Invalid confirmation code", bundle.Resolve("confirmation.invalid"))
	assert.Equal(suite.T(), "Failed to resend the confirmation email",
		bundle.Resolve("failed.confirmation.mail.resend"))
}

func (suite *BundleTestSuite) TestResolveUnknownKey() {
	assert.Equal(suite.T(), "unknown.key", DefaultBundle().Resolve("unknown.key"))
}

func (suite *BundleTestSuite) TestLoadBundleOverrides() {
	path := filepath.Join(suite.T().TempDir(), "messages_fr.yaml")
	content := "confirmation.invalid: \"Code de confirmation invalide\"\n"
	suite.Require().NoError(os.WriteFile(path, []byte(content), 0o600))

	bundle, err := LoadBundle(path)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Code de confirmation invalide", bundle.Resolve("confirmation.invalid"))
	// Keys that are not overridden fall back to the defaults.
	assert.Equal(suite.T(), "Confirmation code expired", bundle.Resolve("confirmation.expired"))
}

func (suite *BundleTestSuite) TestLoadBundleMissingFile() {
	bundle, err := LoadBundle(filepath.Join(suite.T().TempDir(), "missing.yaml"))

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), bundle)
}

func (suite *BundleTestSuite) TestLoadBundleInvalidYAML() {
	path := filepath.Join(suite.T().TempDir(), "broken.yaml")
	suite.Require().NoError(os.WriteFile(path, []byte("- not\n- a map\n"), 0o600))

	bundle, err := LoadBundle(path)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), bundle)
}
