package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ogurasousui/hr-desk/internal/core/document"
)

const fieldParamPrefix = "field."

// DownloadDocument は差し込み済みの文書をテキストファイルとして返します。
func (h *Handler) DownloadDocument(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		h.fail(w, r, document.ErrInvalidTemplateID)
		return
	}

	rendered, err := h.documents.RenderDraft(r.Context(), draftFromQuery(id, r.URL.Query()))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+rendered.Template.ID+`.txt"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(rendered.Text))
}

// draftFromQuery は field.<id> パラメーターから下書きを組み立てます。
// 空の値は未入力として扱い、{ラベル} のまま残します。
func draftFromQuery(templateID string, q url.Values) document.Draft {
	draft := document.NewDraft(templateID)
	for name, values := range q {
		fieldID, ok := strings.CutPrefix(name, fieldParamPrefix)
		if !ok || fieldID == "" || len(values) == 0 || values[0] == "" {
			continue
		}
		draft = draft.Set(fieldID, values[0])
	}
	return draft
}

func downloadURL(r *document.Rendered) string {
	q := url.Values{}
	for id, v := range r.Values {
		q.Set(fieldParamPrefix+id, v)
	}
	u := "/documents/" + url.PathEscape(r.Template.ID) + ".txt"
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}
