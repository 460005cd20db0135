package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"shiptrack/internal/delivery/api/response"
	"shiptrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ExportFileName is the attachment name of a dashboard export.
const ExportFileName = "shipments-export.json"

// importFormField is the multipart field an uploaded export arrives in.
const importFormField = "file"

// TransferHandlerParams holds dependencies for TransferHandler, injected by Fx.
type TransferHandlerParams struct {
	fx.In

	TransferUC usecase.TransferUsecase
	Logger     *slog.Logger
}

// TransferHandler serves bulk export, import and on-demand backups.
type TransferHandler struct {
	transferUC usecase.TransferUsecase
	logger     *slog.Logger
}

// NewTransferHandler is the constructor for TransferHandler.
func NewTransferHandler(params TransferHandlerParams) *TransferHandler {
	return &TransferHandler{
		transferUC: params.TransferUC,
		logger:     params.Logger,
	}
}

// BackupResponse names the archive object a backup was written to.
type BackupResponse struct {
	Name string `json:"name"`
}

// Export downloads the whole collection as a JSON array.
func (h *TransferHandler) Export(c echo.Context) error {
	data, err := h.transferUC.Export(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+ExportFileName+`"`)

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, data)
}

// Import replaces or merges the collection from an export. The payload is
// either the raw request body or a multipart upload.
func (h *TransferHandler) Import(c echo.Context) error {
	data, err := readImportPayload(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Could not read import file")
	}

	result, err := h.transferUC.Import(c.Request().Context(), data)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// Backup writes a snapshot of the collection to the backup archive.
func (h *TransferHandler) Backup(c echo.Context) error {
	name, err := h.transferUC.Backup(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, &BackupResponse{Name: name})
}

// BackupList names the stored backups, newest first.
type BackupList struct {
	Names []string `json:"names"`
}

// ListBackups shows which backups can be restored through import.
func (h *TransferHandler) ListBackups(c echo.Context) error {
	names, err := h.transferUC.Backups(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &BackupList{Names: names})
}

func readImportPayload(c echo.Context) ([]byte, error) {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		data, err := io.ReadAll(c.Request().Body)

		return data, errors.WithStack(err)
	}

	fileHeader, err := c.FormFile(importFormField)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)

	return data, errors.WithStack(err)
}
