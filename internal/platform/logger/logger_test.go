package logger

import "testing"

func TestSanitizeKVsRedactsAndHashes(t *testing.T) {
	t.Setenv("LOG_REDACTION_ENABLED", "true")

	out := sanitizeKVs([]interface{}{
		"password", "hunter2",
		"content", "I feel anxious",
		"user_id", "0b5c2c1e-1111-4444-8888-000000000000",
		"plan_id", "p-1",
		"dangling",
	})
	if len(out) != 9 {
		t.Fatalf("len=%d", len(out))
	}
	if out[1] != "[REDACTED]" || out[3] != "[REDACTED]" {
		t.Fatalf("expected redaction, got %v / %v", out[1], out[3])
	}
	hashed, _ := out[5].(string)
	if len(hashed) != len("hash:")+12 {
		t.Fatalf("expected short hash, got %q", hashed)
	}
	if out[7] != "p-1" {
		t.Fatalf("plan_id should pass through, got %v", out[7])
	}
	if out[8] != "dangling" {
		t.Fatalf("odd key should be kept")
	}
}

func TestSanitizeNestedMap(t *testing.T) {
	v := sanitizeValue("", map[string]interface{}{"note": "private", "mood": "sad"})
	m := v.(map[string]interface{})
	if m["note"] != "[REDACTED]" || m["mood"] != "sad" {
		t.Fatalf("unexpected %v", m)
	}
}
