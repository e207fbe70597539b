package handler

import (
	"net/http"

	"github.com/ogurasousui/hr-desk/internal/core/workflow"
)

// CreateWorkflow は自動化定義を登録します。チェックされたアクションは送信順に集合へ加えます。
func (h *Handler) CreateWorkflow(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		h.fail(w, r, err)
		return
	}

	actions := make([]workflow.Action, 0, len(r.PostForm["actions"]))
	for _, a := range r.PostForm["actions"] {
		actions = append(actions, workflow.Action(a))
	}

	if _, err := h.workflows.CreateWorkflow(r.Context(), workflow.CreateWorkflowInput{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
		Trigger:     workflow.Trigger(r.PostFormValue("trigger")),
		Actions:     actions,
		Owner:       r.PostFormValue("owner"),
	}); err != nil {
		h.fail(w, r, err)
		return
	}

	redirectBack(w, r, "workflows")
}
