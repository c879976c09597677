package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/digistorehq/digistore/api/web"
	"github.com/digistorehq/digistore/api/weberr"
	"github.com/digistorehq/digistore/core/catalog"
	"github.com/digistorehq/digistore/core/shop"
	"github.com/digistorehq/digistore/validate"
)

// Content tree editing endpoints. The tree operations themselves treat
// unknown module and file ids as no-ops, so only an unknown product id
// is an error here.

func handleCreateModule(s *shop.Shop) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := web.IntParam(r, "id")
		if err != nil {
			return weberr.NotFound(err)
		}

		var nm catalog.ModuleNew
		if err := web.Decode(w, r, &nm); err != nil {
			return weberr.BadRequest(errors.New("unable to decode payload"))
		}
		if err := validate.Check(nm); err != nil {
			return weberr.Unprocessable(err)
		}

		moduleID := s.AddModule(id, nm.ParentID, nm.Title)
		if moduleID == "" {
			return weberr.NotFound(shop.ErrUnknownProduct)
		}

		out := struct {
			ID string `json:"id"`
		}{moduleID}
		return web.Respond(ctx, w, out, http.StatusCreated)
	}
}

func handleRenameModule(s *shop.Shop) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := web.IntParam(r, "id")
		if err != nil {
			return weberr.NotFound(err)
		}

		var payload struct {
			Title string `json:"title" validate:"required"`
		}
		if err := web.Decode(w, r, &payload); err != nil {
			return weberr.BadRequest(errors.New("unable to decode payload"))
		}
		if err := validate.Check(payload); err != nil {
			return weberr.Unprocessable(err)
		}

		s.RenameModule(id, web.Param(r, "mid"), payload.Title)
		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}

func handleDeleteModule(s *shop.Shop) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := web.IntParam(r, "id")
		if err != nil {
			return weberr.NotFound(err)
		}

		s.DeleteModule(id, web.Param(r, "mid"))
		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}

func handleCreateFile(s *shop.Shop) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := web.IntParam(r, "id")
		if err != nil {
			return weberr.NotFound(err)
		}

		var nf catalog.FileNew
		if err := web.Decode(w, r, &nf); err != nil {
			return weberr.BadRequest(errors.New("unable to decode payload"))
		}
		if err := validate.Check(nf); err != nil {
			return weberr.Unprocessable(err)
		}
		if !catalog.ValidFileType(catalog.FileType(nf.Type)) {
			return weberr.Unprocessable(errors.New("unknown file type " + nf.Type))
		}

		fileID := s.AddFile(id, web.Param(r, "mid"), nf)
		if fileID == "" {
			return weberr.NotFound(shop.ErrUnknownProduct)
		}

		out := struct {
			ID string `json:"id"`
		}{fileID}
		return web.Respond(ctx, w, out, http.StatusCreated)
	}
}

func handleDeleteFile(s *shop.Shop) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := web.IntParam(r, "id")
		if err != nil {
			return weberr.NotFound(err)
		}

		s.DeleteFile(id, web.Param(r, "mid"), web.Param(r, "fid"))
		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}
