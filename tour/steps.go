// Copyright 2026 The SQLTour Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tour

// The lesson's literal queries. None are parameterized: each is shown to
// the learner exactly as it runs.
const (
	QueryPeek = `SELECT * FROM health LIMIT 5`

	QueryProject = `SELECT location_key, life_expectancy, smoking_prevalence
FROM health
LIMIT 5`

	QueryCount = `SELECT COUNT(*) FROM health`

	QueryLifeStats = `SELECT MIN(life_expectancy), MAX(life_expectancy), AVG(life_expectancy)
FROM health`

	QueryLifeStatsFiltered = `SELECT MIN(life_expectancy), MAX(life_expectancy), AVG(life_expectancy)
FROM health
WHERE life_expectancy < 100`

	QueryTopLife = `SELECT location_key, life_expectancy
FROM health
WHERE life_expectancy < 100
ORDER BY life_expectancy DESC
LIMIT 10`

	QueryJoin = `SELECT locations.country_name, health.life_expectancy
FROM health
JOIN locations ON locations.key = health.location_key
LIMIT 10`

	QueryGroup = `SELECT country_name, COUNT(*)
FROM locations
GROUP BY country_name
ORDER BY COUNT(*) DESC
LIMIT 10`

	QueryScatter = `SELECT smoking_prevalence, life_expectancy FROM health`

	QueryScatterFiltered = `SELECT smoking_prevalence, life_expectancy
FROM health
WHERE life_expectancy < 100`
)

// Lesson narration. Kept short: the queries and their results carry the
// teaching, the prose only frames them.
const (
	proseConnect = `A relational database keeps data in tables: rows of named,
typed columns. We start by opening a session with an engine that runs
inside this process, holding everything in memory.`

	proseRemote = `Our dataset lives on the web as two CSV files. Before the
engine can read them we enable its remote file access.`

	proseLoad = `Now we import both files. The engine looks at the data and
infers a column type for every field, we never declare a schema by hand.`

	proseTables = `The session now holds two tables. Listing them is the first
thing to do in any unfamiliar database.`

	proseDescribe = `Each table has a schema: column names and the types the
import inferred. Note the matching key columns, health.location_key and
locations.key.`

	proseSelect = `SELECT retrieves rows. The * form returns every column;
LIMIT keeps the output small while we explore.`

	proseProject = `Listing columns by name projects just the attributes we
care about.`

	proseAggregate = `Aggregate functions collapse many rows into one summary
value: how many rows there are, and the smallest, largest and average life
expectancy.`

	proseOutlier = `Look closely at that maximum. No population lives that
long, there is a suspicious value in this column. Real datasets ship with
warts; keep the number in mind for the next step.`

	proseFilter = `WHERE keeps only the rows a condition matches. Filtering to
life_expectancy < 100 drops the implausible value and the summary becomes
believable.`

	proseOrder = `ORDER BY sorts the result, DESC for descending, and LIMIT
caps it, giving us a top-ten list.`

	proseJoin = `The health table only knows locations by key. Joining against
the locations table on that key pairs every measurement with its country
name. Rows without a matching key on either side simply do not appear.`

	proseGroup = `GROUP BY partitions rows by a column and aggregates within
each partition, here counting locations per country.`

	prosePlot = `SQL ends where analysis begins. We pull a result set back
into the host program and hand two numeric columns to a chart library,
first with the outlier still in, then filtered. Compare the two pictures.`
)
