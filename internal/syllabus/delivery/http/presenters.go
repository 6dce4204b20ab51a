package http

import (
	"time"

	"syllabus-sync/internal/model"
	"syllabus-sync/internal/syllabus"
)

type taskResp struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Type    string `json:"type"`
	Details string `json:"details,omitempty"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:      t.ID,
		Title:   t.Title,
		Type:    string(t.Type),
		Details: t.Details,
		Start:   t.Start.Format(time.RFC3339),
		End:     t.End.Format(time.RFC3339),
	}
}

type parseResp struct {
	SessionID string     `json:"session_id"`
	Count     int        `json:"count"`
	Items     []taskResp `json:"items"`
	Message   string     `json:"message,omitempty"`
}

func (h *handler) newParseResp(output syllabus.ParseOutput) parseResp {
	items := make([]taskResp, 0, len(output.Tasks))
	for _, t := range output.Tasks {
		items = append(items, newTaskResp(t))
	}

	resp := parseResp{
		SessionID: output.SessionID,
		Count:     len(items),
		Items:     items,
	}
	if len(items) == 0 {
		resp.Message = "No dates found in the document"
	}
	return resp
}

type taskReq struct {
	ID      string `json:"id"`
	Title   string `json:"title" binding:"required"`
	Type    string `json:"type"`
	Details string `json:"details"`
	Start   string `json:"start" binding:"required"`
	End     string `json:"end"`
}

// toModel converts an inline task back into the domain model. Clients
// may have edited titles and times after extraction, so everything is
// re-validated here.
func (r taskReq) toModel() (model.Task, error) {
	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return model.Task{}, errBadTaskTime
	}

	// End is not required to follow Start: client-side edits may invert
	// the interval and downstream rendering tolerates it.
	end := start.Add(model.DefaultDuration)
	if r.End != "" {
		end, err = time.Parse(time.RFC3339, r.End)
		if err != nil {
			return model.Task{}, errBadTaskTime
		}
	}

	typ := model.TaskType(r.Type)
	if r.Type == "" {
		typ = model.TypeOther
	}
	if !typ.Valid() {
		return model.Task{}, errBadTaskType
	}

	t := model.NewTask(r.Title, typ, start)
	if r.ID != "" {
		t.ID = r.ID
	}
	t.Details = r.Details
	t.End = end
	return t, nil
}

type tasksReq struct {
	Tasks []taskReq `json:"tasks" binding:"required"`
}

func (r tasksReq) toModels() ([]model.Task, error) {
	tasks := make([]model.Task, 0, len(r.Tasks))
	for _, tr := range r.Tasks {
		t, err := tr.toModel()
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

type pushResp struct {
	Count int      `json:"count"`
	Links []string `json:"links"`
}

func newPushResp(output syllabus.PushOutput) pushResp {
	return pushResp{Count: output.Count, Links: output.Links}
}
