package checklist

import "slices"

// EmptyBucketText は空の分類に表示する文言です。
const EmptyBucketText = "لا توجد مهام حالياً"

// Bucket は一つの分類に属するタスク列です。
type Bucket struct {
	Category Category
	Items    []Item
}

// Empty は列にタスクがないかを返します。
func (b Bucket) Empty() bool {
	return len(b.Items) == 0
}

// Board は固定順の四つの分類列です。
type Board []Bucket

// Total はボード全体のタスク数です。
func (b Board) Total() int {
	n := 0
	for _, bucket := range b {
		n += len(bucket.Items)
	}
	return n
}

// Group はタスクを分類ごとに振り分け、各列を期限の早い順に並べます。
// 同じ期限のタスクは登録順を保ちます。未知の分類のタスクはどの列にも入りません。
func Group(items []Item) Board {
	board := make(Board, len(Categories))
	index := make(map[Category]int, len(Categories))
	for i, c := range Categories {
		board[i] = Bucket{Category: c, Items: []Item{}}
		index[c] = i
	}

	for _, it := range items {
		i, ok := index[it.Category]
		if !ok {
			continue
		}
		board[i].Items = append(board[i].Items, it)
	}

	for i := range board {
		slices.SortStableFunc(board[i].Items, func(a, b Item) int {
			switch {
			case a.DueDate.Before(b.DueDate):
				return -1
			case a.DueDate.After(b.DueDate):
				return 1
			default:
				return 0
			}
		})
	}
	return board
}
