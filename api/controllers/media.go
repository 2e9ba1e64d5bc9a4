package controllers

import (
	"context"
	"io"
	"net/http"

	"github.com/quintech/quintech-backend/api/middleware"
	"github.com/quintech/quintech-backend/api/responses"
	pkgerrors "github.com/quintech/quintech-backend/pkg/errors"
	"github.com/quintech/quintech-backend/pkg/logger"
)

const uploadFormField = "image"

type profileImageUploader interface {
	UploadProfileImage(ctx context.Context, handle, contentType string, data io.Reader) (string, error)
}

// UploadProfileImage accepts a multipart image and repoints the caller's
// profile at the stored object.
func UploadProfileImage(svc profileImageUploader, maxUploadBytes int64, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "media service unavailable"))
			return
		}

		handle := middleware.HandleFromContext(r.Context())
		if handle == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		if maxUploadBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		}

		file, header, err := r.FormFile(uploadFormField)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "missing image file"))
			return
		}
		defer func() { _ = file.Close() }()

		contentType := header.Header.Get("Content-Type")
		if _, err := svc.UploadProfileImage(r.Context(), handle, contentType, file); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": "image uploaded successfully"})
	}
}
