package usecase

const helpText = `Here is what I understand:
- add <text> [time HH:MM] [priority low|med|high] [tags a,b,c] [notes ...]
- done <task> / delete <task>
- list / what's left / show done
- clear done / carry forward
- switch YYYY-MM-DD / today / tomorrow
Anything else I will do my best to figure out.`

// schemaInstruction is the fixed tool-call contract sent to the language
// model with every fallback request.
const schemaInstruction = `When the user asks you to change their task list, reply with a single JSON object inside a fenced code block labeled json. The object must have an "action" field with one of these shapes:
- {"action": "create", "task": {"text": "...", "time": "HH:MM", "priority": "low|med|high", "tags": ["..."], "notes": "...", "done": false}, "message": "..."} (only "text" is required)
- {"action": "update", "match": {"text": "..."}, "changes": {"text": "...", "time": "...", "priority": "...", "tags": ["..."], "notes": "...", "done": true}, "message": "..."} (include only the fields to change)
- {"action": "complete", "match": {"text": "..."}, "message": "..."}
- {"action": "uncomplete", "match": {"text": "..."}, "message": "..."}
- {"action": "delete", "match": {"text": "..."}, "message": "..."}
- {"action": "switch_date", "date": "YYYY-MM-DD", "message": "..."}
"match.text" should quote the task's title or a distinctive part of it. Use "message" for a short friendly confirmation. If the user is only chatting, reply in plain text with no JSON at all.`

const (
	bridgeTemperature = 0.2
	bridgeMaxTokens   = 1024

	// bridgeHistoryLimit bounds how many prior transcript entries accompany
	// a fallback request.
	bridgeHistoryLimit = 20
)
