package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"brigade/internal/apperr"
	"brigade/internal/storage"
)

// imageOwner adapts one entity type's image bookkeeping for the shared
// upload/remove flow.
type imageOwner struct {
	// currentImage resolves the entity and returns its stored image path;
	// found is false when the id does not exist.
	currentImage func(ctx context.Context, id int) (path string, found bool, err error)
	// persistImage stores a new image path on the entity.
	persistImage func(ctx context.Context, id int, url string) (bool, error)
}

// uploadImage implements the multipart upload contract shared by donation
// and report image endpoints.
func uploadImage(c echo.Context, store *storage.Store, owner imageOwner) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	file, err := c.FormFile("file")
	if err != nil || file.Size == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "no file")
	}
	if file.Size > store.MaxSizeBytes() {
		return echo.NewHTTPError(http.StatusBadRequest,
			"max size "+strconv.FormatInt(store.MaxSizeBytes()/1024/1024, 10)+" MB")
	}
	if !store.ExtensionAllowed(file.Filename) {
		return echo.NewHTTPError(http.StatusBadRequest, "unsupported file type")
	}

	ctx := c.Request().Context()
	oldPath, found, err := owner.currentImage(ctx, id)
	if err != nil {
		httpErr := apperr.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if !found {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	}

	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "read upload")
	}
	defer src.Close()

	url, err := store.Save(src, file.Filename)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "store upload")
	}

	// Best effort: the previous file, if managed by us, goes away quietly.
	store.Remove(oldPath)

	ok, err := owner.persistImage(ctx, id, url)
	if err != nil {
		httpErr := apperr.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to save image path")
	}

	return c.JSON(http.StatusOK, echo.Map{"url": url})
}

// removeImage implements the delete-image contract: 404 for a missing
// entity, otherwise best-effort file removal, empty path persisted, 204.
func removeImage(c echo.Context, store *storage.Store, owner imageOwner) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	ctx := c.Request().Context()
	oldPath, found, err := owner.currentImage(ctx, id)
	if err != nil {
		httpErr := apperr.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if !found {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	}

	store.Remove(oldPath)

	if _, err := owner.persistImage(ctx, id, ""); err != nil {
		httpErr := apperr.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.NoContent(http.StatusNoContent)
}
