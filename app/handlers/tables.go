package handlers

const CreateTablesIfNotExists = `
	CREATE TABLE IF NOT EXISTS snapshots
	(
		region STRING,
		position INTEGER,
		video_id STRING,
		title STRING,
		channel STRING,
		channel_id STRING,
		thumbnail STRING,
		channel_thumbnail STRING,
		views INTEGER,
		likes INTEGER,
		comments INTEGER,
		subscribers INTEGER,
		published STRING,
		duration STRING,
		fetched INTEGER,
		PRIMARY KEY (region, video_id)
	);
`
