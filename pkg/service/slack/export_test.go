package slack

var BuildReportBlocks = buildReportBlocks
