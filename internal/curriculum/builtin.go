package curriculum

import "fmt"

// DiagnosticQuestions returns the fixed diagnostic set used in local
// mode. The platform serves its own copy of the same set; ids are in a
// separate range from curriculum problems so the two never collide.
func DiagnosticQuestions() []Question {
	return []Question{
		{
			ID:          101,
			Title:       "Reverse a String",
			Description: "Write a function to reverse a string without using built-in reverse functions.",
			StarterCode: "def reverse_string(s):\n    # Your code here\n    pass",
		},
		{
			ID:          102,
			Title:       "Find Duplicates",
			Description: "Find the duplicate number in an array of integers.",
			StarterCode: "def find_duplicate(nums):\n    # Your code here\n    pass",
		},
		{
			ID:          103,
			Title:       "Valid Parentheses",
			Description: "Given a string containing just the characters '(', ')', '{', '}', '[' and ']', determine if the input string is valid.",
			StarterCode: "def is_valid(s):\n    # Your code here\n    pass",
		},
	}
}

// BuiltinPath returns the local-mode learning path: the same topics and
// problems the platform seeds, ordered easiest topic first.
func BuiltinPath() []Topic {
	return []Topic{
		builtinTopic(1, "Arrays", "arrays", "Master the basics of data storage.",
			"Two Sum", "Find indices of two numbers that add up to target.",
			"Max Subarray", "Find the contiguous subarray with the largest sum.",
			"Rotate Image", "Rotate a 2D matrix by 90 degrees.",
		),
		builtinTopic(2, "Strings", "strings", "Manipulation and parsing of text.",
			"Valid Anagram", "Check if two strings are anagrams.",
			"Longest Palindrome", "Find the longest palindromic substring.",
			"Word Break", "Segment string into dictionary words.",
		),
		builtinTopic(3, "Linked Lists", "linked-lists", "Nodes, pointers, and dynamic structures.",
			"Reverse List", "Reverse a singly linked list.",
			"Detect Cycle", "Determine if a linked list has a cycle.",
			"Merge k Lists", "Merge k sorted linked lists.",
		),
		builtinTopic(4, "Trees & Graphs", "trees-graphs", "Hierarchical data and network structures.",
			"Invert Binary Tree", "Invert a binary tree.",
			"Number of Islands", "Count islands in a grid.",
			"Word Ladder", "Transform start word to end word.",
		),
		builtinTopic(5, "Dynamic Programming", "dp", "Optimization through recursion and memoization.",
			"Climbing Stairs", "Count ways to climb stairs.",
			"Coin Change", "Fewest coins to make up amount.",
			"Longest Increasing Subsequence", "Find the length of LIS.",
		),
	}
}

// builtinTopic builds one topic with three problems at ascending
// difficulty. Problem ids are topic*10 + position.
func builtinTopic(id int, name, slug, desc string, pairs ...string) Topic {
	tiers := []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}
	t := Topic{ID: id, Name: name, Slug: slug, Description: desc}
	for i := 0; i*2+1 < len(pairs); i++ {
		title := pairs[i*2]
		t.Problems = append(t.Problems, Question{
			ID:          id*10 + i + 1,
			Title:       title,
			Description: pairs[i*2+1],
			StarterCode: fmt.Sprintf("# Solution for %s\ndef solution():\n    pass", title),
			Difficulty:  tiers[i%len(tiers)],
		})
	}
	return t
}
