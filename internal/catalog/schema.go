package catalog

// SchemaVersion is the schema version this build writes.
const SchemaVersion = 1

const schema = `
-- Selectable items, grouped into named lists
CREATE TABLE IF NOT EXISTS items (
    list TEXT NOT NULL,
    id TEXT NOT NULL,
    label TEXT NOT NULL,
    position INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (list, id)
);

CREATE INDEX IF NOT EXISTS idx_items_list_position ON items(list, position);

-- Key/value metadata (schema version)
CREATE TABLE IF NOT EXISTS schema_info (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`
