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

package confirmation

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/asgardeo/thunder-portal/internal/system/constants"
	"github.com/asgardeo/thunder-portal/internal/system/i18n"
	"github.com/asgardeo/thunder-portal/internal/system/log"
	sysutils "github.com/asgardeo/thunder-portal/internal/system/utils"
)

const handlerLoggerComponentName = "ConfirmationHandler"

//go:embed templates/confirm.html
var templateFS embed.FS

// pageData is the data passed to the confirmation page template.
type pageData struct {
	ViewModel
	Action string
}

// confirmationHandler serves the confirmation page.
type confirmationHandler struct {
	controller  ConfirmationControllerInterface
	contextPath string
	page        *template.Template
}

func newConfirmationHandler(controller ConfirmationControllerInterface, bundle *i18n.Bundle,
	contextPath string) *confirmationHandler {
	page := template.Must(template.New("confirm.html").
		Funcs(template.FuncMap{"msg": bundle.Resolve}).
		ParseFS(templateFS, "templates/confirm.html"))

	return &confirmationHandler{
		controller:  controller,
		contextPath: contextPath,
		page:        page,
	}
}

// HandleConfirmationRequest handles a visit to the confirmation link sent to the user.
func (h *confirmationHandler) HandleConfirmationRequest(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	request := ConfirmationRequest{
		ConfirmationCode: query.Get(queryParamConfirmationCode),
		UserID:           query.Get(queryParamUserID),
		Callback:         query.Get(paramCallback),
	}

	view := h.controller.HandleConfirmation(r.Context(), request)
	h.render(w, r, view)
}

// HandleResendRequest handles a request to resend the confirmation code.
func (h *confirmationHandler) HandleResendRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	if err := r.ParseForm(); err != nil {
		logger.Debug("Failed to parse the resend form", log.Error(err))
		sysutils.WriteJSONError(w, "invalid_request", "Failed to parse form data", http.StatusBadRequest, nil)
		return
	}

	request := ResendRequest{
		UserID:   r.PostFormValue(formParamUserID),
		Username: r.PostFormValue(formParamUsername),
		Domain:   r.PostFormValue(formParamDomain),
		Callback: r.PostFormValue(paramCallback),
		Origin: RequestOrigin{
			Scheme:      sysutils.GetRequestScheme(r),
			Host:        r.Host,
			ContextPath: h.contextPath,
		},
	}

	view := h.controller.HandleResend(r.Context(), request)
	h.render(w, r, view)
}

// render writes the view as an HTML page when the client accepts HTML, or as JSON otherwise.
func (h *confirmationHandler) render(w http.ResponseWriter, r *http.Request, view ViewModel) {
	if !sysutils.AcceptsHTML(r) {
		sysutils.WriteJSON(w, http.StatusOK, view)
		return
	}

	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	var buf bytes.Buffer
	data := pageData{ViewModel: view, Action: h.contextPath + confirmationPath}
	if err := h.page.Execute(&buf, data); err != nil {
		logger.Error("Failed to render the confirmation page", log.Error(err))
		http.Error(w, "Failed to render the confirmation page", http.StatusInternalServerError)
		return
	}

	w.Header().Set(constants.ContentTypeHeaderName, constants.ContentTypeHTML)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error("Failed to write the confirmation page", log.Error(err))
	}
}
