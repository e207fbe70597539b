package workflow

// ActionSet は挿入順を保つ重複なしのアクション集合です。
type ActionSet []Action

// Has は集合にアクションが含まれるかを返します。
func (s ActionSet) Has(a Action) bool {
	for _, existing := range s {
		if existing == a {
			return true
		}
	}
	return false
}

// Add は未登録の場合のみ末尾に追加した集合を返します。
func (s ActionSet) Add(a Action) ActionSet {
	if s.Has(a) {
		return s
	}
	next := make(ActionSet, len(s), len(s)+1)
	copy(next, s)
	return append(next, a)
}

// Toggle は含まれていれば取り除き、含まれていなければ追加した集合を返します。
func (s ActionSet) Toggle(a Action) ActionSet {
	if !s.Has(a) {
		return s.Add(a)
	}
	next := make(ActionSet, 0, len(s)-1)
	for _, existing := range s {
		if existing != a {
			next = append(next, existing)
		}
	}
	return next
}

// Clone は集合の複製を返します。
func (s ActionSet) Clone() ActionSet {
	if s == nil {
		return nil
	}
	return append(ActionSet(nil), s...)
}
