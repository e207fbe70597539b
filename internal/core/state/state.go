// Package state はダッシュボード全体の状態と、それを更新する型付きアクションを定義します。
// 状態は値として扱い、Reduce は常に新しいコレクションを返します。
package state

import (
	"github.com/ogurasousui/hr-desk/internal/core/checklist"
	"github.com/ogurasousui/hr-desk/internal/core/employee"
	"github.com/ogurasousui/hr-desk/internal/core/leave"
	"github.com/ogurasousui/hr-desk/internal/core/workflow"
)

// State は四つのエンティティコレクションです。各スライスは先頭が最新です。
type State struct {
	Employees     []employee.Employee
	LeaveRequests []leave.Request
	Checklist     []checklist.Item
	Workflows     []workflow.Workflow
}

// Clone は要素まで複製した State を返します。
func (s State) Clone() State {
	out := State{
		Employees:     make([]employee.Employee, len(s.Employees)),
		LeaveRequests: append([]leave.Request(nil), s.LeaveRequests...),
		Checklist:     append([]checklist.Item(nil), s.Checklist...),
		Workflows:     make([]workflow.Workflow, len(s.Workflows)),
	}
	for i, e := range s.Employees {
		out.Employees[i] = e.Clone()
	}
	for i, w := range s.Workflows {
		out.Workflows[i] = w.Clone()
	}
	return out
}
